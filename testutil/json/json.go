package jsonutil

import (
	"encoding/json"
	"fmt"
)

// ReadJSONValue reads a top level value of a JSON object given a key
func ReadJSONValue(data []byte, key string) (interface{}, error) {
	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("could not unmarshal JSON: %v", err)
	}

	value, exists := result[key]
	if !exists {
		return nil, fmt.Errorf("key not found in JSON: %s", key)
	}

	return value, nil
}

func ReadJSONValueToString(data []byte, key string) (string, error) {
	value, err := ReadJSONValue(data, key)
	if err != nil {
		return "", err
	}

	strValue, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("value is not a string: %v", value)
	}

	return strValue, nil
}

func ReadJSONValueToUint64(data []byte, key string) (uint64, error) {
	value, err := ReadJSONValue(data, key)
	if err != nil {
		return 0, err
	}

	// JSON numbers are decoded as float64
	floatValue, ok := value.(float64)
	if !ok {
		return 0, fmt.Errorf("value is not a number: %v", value)
	}

	return uint64(floatValue), nil
}
