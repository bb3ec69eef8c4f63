package worker

import "time"

var nowFunc = time.Now
