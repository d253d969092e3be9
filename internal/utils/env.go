// internal/utils/env.go
package utils

import "os"

// GetEnvDefault возвращает значение переменной окружения или значение по умолчанию.
func GetEnvDefault(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaultValue
}
