// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package utils

import (
	"fmt"
	"reflect"
	"unicode"

	log "github.com/sirupsen/logrus"
)

const maskedValue = "*****"

// PrintConfig logs every exported leaf field of config as key=value.
// Fields tagged `sensitive:"true"` are masked unless empty.
func PrintConfig(config interface{}) {
	log.Info("Loaded configuration:")
	for _, line := range ConfigLines(config) {
		log.Info(line)
	}
}

// ConfigLines renders config the way PrintConfig logs it.
func ConfigLines(config interface{}) []string {
	var lines []string
	collectStruct("", reflect.ValueOf(config), &lines)
	return lines
}

func collectStruct(prefix string, v reflect.Value, lines *[]string) {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}
		key := configKey(field)
		if prefix != "" {
			key = prefix + "." + key
		}
		_, isSensitive := field.Tag.Lookup("sensitive")

		value := v.Field(i)
		if value.Kind() == reflect.Ptr {
			if value.IsNil() {
				*lines = append(*lines, key+"=<nil>")
				continue
			}
			value = value.Elem()
		}

		switch value.Kind() {
		case reflect.Struct:
			collectStruct(key, value, lines)
		case reflect.Slice:
			if value.Type().Elem().Kind() == reflect.Struct && value.Len() > 0 {
				for j := 0; j < value.Len(); j++ {
					collectStruct(fmt.Sprintf("%s[%d]", key, j), value.Index(j), lines)
				}
			} else {
				*lines = append(*lines, formatValue(key, value, isSensitive))
			}
		default:
			*lines = append(*lines, formatValue(key, value, isSensitive))
		}
	}
}

// configKey prefers the mapstructure tag viper decodes with, falling back to the lower camel field name.
func configKey(field reflect.StructField) string {
	if tag, ok := field.Tag.Lookup("mapstructure"); ok && tag != "" && tag != "-" {
		return tag
	}
	runes := []rune(field.Name)
	if len(runes) > 0 {
		runes[0] = unicode.ToLower(runes[0])
	}
	return string(runes)
}

func isValueEmpty(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

func formatValue(key string, value reflect.Value, isSensitive bool) string {
	var valStr string
	if isSensitive && !isValueEmpty(value) {
		valStr = maskedValue
	} else if value.IsValid() && value.CanInterface() {
		valStr = fmt.Sprintf("%v", value.Interface())
	}
	return fmt.Sprintf("%s=%s", key, valStr)
}
