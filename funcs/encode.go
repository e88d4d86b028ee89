package funcs

import (
	"encoding/base32"
	"encoding/base64"
	"fmt"
	"unicode/utf8"
)

func base64encode(s string) (string, error) {
	return base64.StdEncoding.EncodeToString([]byte(s)), nil
}

func base64decode(s string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("unable to decode: %v", err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("unable to decode: result is not valid UTF-8")
	}
	return string(raw), nil
}

func base32encode(s string) (string, error) {
	return base32.StdEncoding.EncodeToString([]byte(s)), nil
}

func base32decode(s string) (string, error) {
	raw, err := base32.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("unable to decode: %v", err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("unable to decode: result is not valid UTF-8")
	}
	return string(raw), nil
}
