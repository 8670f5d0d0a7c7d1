package link

import (
	"regexp"
)

// videoURL recognizes the watch, embed, /v/ and shortlink forms of a video
// link, with or without a scheme and a www./m. subdomain. Capture group 5
// holds the video identifier.
var videoURL = regexp.MustCompile(`^((?:https?:)?//)?((?:www|m)\.)?(youtube\.com|youtu\.be)(/(?:[\w-]+\?v=|embed/|v/)?)([\w-]+)(\S+)?$`)

// ExtractVideoID pulls the video identifier out of a submission link.
// The identifier is returned verbatim, no normalization is applied.
func ExtractVideoID(link string) (string, bool) {
	match := videoURL.FindStringSubmatch(link)
	if match == nil {
		return "", false
	}

	return match[5], true
}
