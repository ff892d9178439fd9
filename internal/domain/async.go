package domain

import "time"

type RequestStatus string

const (
	RequestIdle    RequestStatus = "idle"
	RequestLoading RequestStatus = "loading"
	RequestSuccess RequestStatus = "success"
	RequestError   RequestStatus = "error"
)

// AsyncSlice tracks the lifecycle of one asynchronous store operation.
type AsyncSlice struct {
	Status      RequestStatus
	Error       string
	LastUpdated time.Time
}

func IdleSlice() AsyncSlice {
	return AsyncSlice{Status: RequestIdle}
}

func LoadingSlice() AsyncSlice {
	return AsyncSlice{Status: RequestLoading}
}

func SuccessSlice(at time.Time) AsyncSlice {
	return AsyncSlice{Status: RequestSuccess, LastUpdated: at}
}

func ErrorSlice(err error) AsyncSlice {
	return AsyncSlice{Status: RequestError, Error: err.Error()}
}
