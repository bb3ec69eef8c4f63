package service

import "time"

// 測試時可替換的時鐘
var nowFunc = time.Now
