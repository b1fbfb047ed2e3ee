package report

import (
	"fmt"
	"net/url"
)

// PathOf extracts the grouping key from a record's file reference.
//
// The reference is parsed as a URL and only the path component is
// returned: scheme, host, query and fragment are discarded. The path is
// returned verbatim in its percent-encoded form, including a trailing
// slash or the absence of any path (an URL like "http://host" yields
// ""), so "/a%2Fb" and "/a/b" stay distinct keys. References that are
// not absolute URLs (bare or relative paths) parse fine and yield their
// path component as-is; only genuinely unparseable strings (invalid
// percent escapes, "://" with no scheme, control characters) fail.
func PathOf(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse url %q: %w", raw, err)
	}
	return u.EscapedPath(), nil
}
