package cli

import "time"

// timeNow is swapped out by tests that need a fixed evaluation time.
var timeNow = time.Now
