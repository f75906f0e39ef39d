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
	"regexp"
	"strings"

	"github.com/iancoleman/orderedmap"
	"golang.org/x/net/html"
)

// Metadata extracted from documents varies per document, not only per document type, so
// the helpers below work on ordered key/value sets: the order of the column list built by
// QueryBuilder must match the order of the values built by BindValuesBuilder.

var extractedValuePrefix = regexp.MustCompile(`^:\s`)

// ReturnedFields returns the entries of possibleQueryFields whose keys are present in metadata.
func ReturnedFields(possibleQueryFields *orderedmap.OrderedMap, metadata *orderedmap.OrderedMap) *orderedmap.OrderedMap {
	result := orderedmap.New()
	for _, key := range possibleQueryFields.Keys() {
		if _, exists := metadata.Get(key); !exists {
			continue
		}
		value, _ := possibleQueryFields.Get(key)
		result.Set(key, value)
	}
	return result
}

// QueryBuilder flattens field values into a comma separated list.
// With prepare set every value is replaced by a ? placeholder.
func QueryBuilder(fields *orderedmap.OrderedMap, prepare bool) string {
	keys := fields.Keys()
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		if prepare {
			parts = append(parts, "?")
			continue
		}
		value, _ := fields.Get(key)
		parts = append(parts, stringValue(value))
	}
	return strings.Join(parts, ",")
}

// BindValuesBuilder returns cleaned metadata values, in metadata order, for every key known to fields.
func BindValuesBuilder(fields *orderedmap.OrderedMap, metadata *orderedmap.OrderedMap) []interface{} {
	params := []interface{}{}
	for _, key := range metadata.Keys() {
		if _, exists := fields.Get(key); !exists {
			continue
		}
		value, _ := metadata.Get(key)
		params = append(params, CleanMetadataValue(stringValue(value)))
	}
	return params
}

// CleanMetadataValue trims the value, strips markup and drops the ": " prefix the extractor puts in front of each value.
func CleanMetadataValue(value string) string {
	return extractedValuePrefix.ReplaceAllString(StripTags(strings.TrimSpace(value)), "")
}

// AddIdInfo appends file and/or user id entries to a copy of metadataFields.
// Keys already present keep their position and take the new value.
func AddIdInfo(metadataFields *orderedmap.OrderedMap, idValues *orderedmap.OrderedMap) *orderedmap.OrderedMap {
	merged := copyOrderedMap(metadataFields)
	for _, key := range idValues.Keys() {
		value, _ := idValues.Get(key)
		merged.Set(key, value)
	}
	return merged
}

// AddIdField appends a single id entry keyed by its own name.
func AddIdField(metadataFields *orderedmap.OrderedMap, id string) *orderedmap.OrderedMap {
	merged := copyOrderedMap(metadataFields)
	merged.Set(id, id)
	return merged
}

// StripTags removes HTML tags and comments and keeps text content as written.
func StripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Raw())
		}
	}
}

func copyOrderedMap(source *orderedmap.OrderedMap) *orderedmap.OrderedMap {
	result := orderedmap.New()
	for _, key := range source.Keys() {
		value, _ := source.Get(key)
		result.Set(key, value)
	}
	return result
}

func stringValue(value interface{}) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
