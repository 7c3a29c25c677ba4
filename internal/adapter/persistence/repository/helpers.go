package repository

import (
	"os"
	"strconv"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Money attributes are stored as strings to dodge float drift in DynamoDB's
// number handling.
func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
