package finmarket

import "net/http"

var httpStatusMap = map[int]string{
	400: "Bad Request. Malformed query parameters",
	403: "Forbidden. Request was missing the expected browser profile headers",
	404: "Invalid URL",
	405: "Invalid HTTP method",
	408: "Request Timeout",
	429: "Rate limit exceeded",
	500: "Internal Server Error",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
}

func statusDetail(code int) string {
	if details, ok := httpStatusMap[code]; ok {
		return details
	}
	return http.StatusText(code)
}
