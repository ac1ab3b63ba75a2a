package error

import "net/http"

// ConfigurationError reports a missing external credential. It degrades a feature, never the process.
type ConfigurationError string

func (err ConfigurationError) Error() string {
	return string(err)
}

func (err ConfigurationError) ErrCode() string {
	return "CONFIGURATION_ERROR"
}

func (err ConfigurationError) StatusCode() int {
	return http.StatusServiceUnavailable
}
