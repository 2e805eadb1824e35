package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const fieldSeparator = "|"

// EncodeMultiFieldToken creates a token with any number of string fields.
func EncodeMultiFieldToken(fields ...string) string {
	return base64.URLEncoding.EncodeToString([]byte(strings.Join(fields, fieldSeparator)))
}

// DecodeMultiFieldToken decodes a token into its component fields.
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), fieldSeparator), nil
}

// EncodeHistoryToken creates a token for the next page of an account's history.
// remaining is the number of entries still to be listed, counted from the oldest
// entry, so entries appended between requests do not move the cursor.
func EncodeHistoryToken(accountID string, remaining int) string {
	return EncodeMultiFieldToken(accountID, strconv.Itoa(remaining))
}

// DecodeHistoryToken returns the remaining-entry count carried by token. The token
// must have been issued for accountID; a token from another account's listing is rejected.
func DecodeHistoryToken(token, accountID string) (int, error) {
	fields, err := DecodeMultiFieldToken(token)
	if err != nil {
		return 0, err
	}
	if len(fields) != 2 {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	if fields[0] != accountID {
		return 0, fmt.Errorf("pagination token was issued for another account")
	}

	remaining, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (position parse): %w", err)
	}
	if remaining < 0 {
		return 0, fmt.Errorf("invalid pagination token format (negative position)")
	}
	return remaining, nil
}
