package openweathermap

import "fmt"

// DefaultIconURLTemplate is the provider CDN path for 2x condition icons
const DefaultIconURLTemplate = "http://openweathermap.org/img/wn/%s@2x.png"

// IconURL returns the CDN URL for an icon code, or "" when there is no code
func IconURL(code string) string {
	return IconURLFromTemplate(DefaultIconURLTemplate, code)
}

// IconURLFromTemplate fills a printf-style template with the icon code
func IconURLFromTemplate(template, code string) string {
	if code == "" {
		return ""
	}
	return fmt.Sprintf(template, code)
}
