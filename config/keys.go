package config

import "strconv"

const (
	delimiter = "."

	KeyPrefix = "stdsharp"

	KeyMemoPrefix = KeyPrefix + delimiter + "memo"
	KeyMemoSize   = KeyMemoPrefix + delimiter + "size"

	KeyLogPrefix = KeyPrefix + delimiter + "log"
	KeyLogLevel  = KeyLogPrefix + delimiter + "level"
)

func formatSize(size uint32) string {
	return strconv.FormatUint(uint64(size), 10)
}
