package mq

// Message tags on the click topic
const (
	TagClick      = "click"
	TagClickRetry = "click_retry"
)
