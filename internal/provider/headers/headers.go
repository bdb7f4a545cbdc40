package headers

import "net/http"

func SetUserAgent(request *http.Request, userAgent string) {
	if userAgent == "" {
		return
	}
	request.Header.Set("User-Agent", userAgent)
}

func SetContentType(request *http.Request, contentType string) {
	request.Header.Set("Content-Type", contentType)
}

func SetAccept(request *http.Request, acceptContent string) {
	request.Header.Set("Accept", acceptContent)
}

func SetAuthBearer(request *http.Request, token string) {
	request.Header.Set("Authorization", "Bearer "+token)
}
