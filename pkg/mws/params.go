package mws

import (
	"net/url"
	"strconv"
	"time"
)

// TimeFormat is the ISO-8601 layout the service expects for timestamps.
const TimeFormat = "2006-01-02T15:04:05Z"

// FormatTime renders t in UTC using TimeFormat.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// setList writes values as prefix.1, prefix.2, ... replacing any earlier
// entries under the same prefix.
func setList(params url.Values, prefix string, values []string) {
	for i := 1; ; i++ {
		key := prefix + "." + strconv.Itoa(i)
		if _, ok := params[key]; !ok {
			break
		}
		params.Del(key)
	}
	for i, v := range values {
		params.Set(prefix+"."+strconv.Itoa(i+1), v)
	}
}

func setString(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

func setTime(params url.Values, key string, t time.Time) {
	if !t.IsZero() {
		params.Set(key, FormatTime(t))
	}
}

func setInt(params url.Values, key string, n int) {
	if n > 0 {
		params.Set(key, strconv.Itoa(n))
	}
}

func setBool(params url.Values, key string, b bool) {
	params.Set(key, strconv.FormatBool(b))
}

func member(prefix string, n int, field string) string {
	key := prefix + ".member." + strconv.Itoa(n)
	if field != "" {
		key += "." + field
	}
	return key
}
