package parse

import "strconv"

func parseIntStrict(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 32)
}

func parseFloatStrict(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
