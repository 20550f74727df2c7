package playstore

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bytedance/sonic"

	"github.com/GriffinCanCode/playapi/internal/domain/playstore"
)

var initDataKey = regexp.MustCompile(`key:\s*'(ds:\d+)'`)

const sideChannelMarker = ", sideChannel:"

// initData holds the raw AF_initDataCallback blobs of a page, keyed by ds:N.
type initData map[string]string

// extractInitData collects every AF_initDataCallback payload on the page.
func extractInitData(doc *goquery.Document) initData {
	out := make(initData)
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		text := s.Text()
		if !strings.Contains(text, "AF_initDataCallback") {
			return
		}
		loc := initDataKey.FindStringSubmatchIndex(text)
		if loc == nil {
			return
		}
		key := text[loc[2]:loc[3]]
		rest := text[loc[1]:]

		start := strings.Index(rest, "data:")
		end := strings.LastIndex(rest, sideChannelMarker)
		if start < 0 || end <= start {
			return
		}
		out[key] = strings.TrimSpace(rest[start+len("data:") : end])
	})
	return out
}

// decode parses the blob stored under key.
func (d initData) decode(key string) (interface{}, error) {
	raw, ok := d[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", playstore.ErrUnexpectedPayload, key)
	}
	var v interface{}
	if err := sonic.UnmarshalString(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", playstore.ErrUnexpectedPayload, key, err)
	}
	return v, nil
}

// dig walks nested arrays by index and returns nil when any step is missing.
func dig(v interface{}, path ...int) interface{} {
	for _, i := range path {
		arr, ok := v.([]interface{})
		if !ok || i < 0 || i >= len(arr) {
			return nil
		}
		v = arr[i]
	}
	return v
}

func digString(v interface{}, path ...int) string {
	switch s := dig(v, path...).(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

func digFloat(v interface{}, path ...int) float64 {
	switch n := dig(v, path...).(type) {
	case float64:
		return n
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	default:
		return 0
	}
}

func digInt(v interface{}, path ...int) int64 {
	return int64(digFloat(v, path...))
}

// digBool reports whether the value at path is truthy.
func digBool(v interface{}, path ...int) bool {
	switch b := dig(v, path...).(type) {
	case nil:
		return false
	case bool:
		return b
	case float64:
		return b != 0
	case string:
		return b != ""
	default:
		return true
	}
}

func digArray(v interface{}, path ...int) []interface{} {
	arr, _ := dig(v, path...).([]interface{})
	return arr
}
