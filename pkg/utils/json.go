package utils

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson formata qualquer valor como JSON indentado
func PrettyJson(in any) string {
	out, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", in)
	}

	return string(out)
}
