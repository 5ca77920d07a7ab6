package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// postTable is both the SurrealDB table and the record ID prefix for posts
const postTable = "post"

// isPostID reports whether id names a record in the post table
func isPostID(id string) bool {
	return strings.HasPrefix(id, postTable+":") && len(id) > len(postTable)+1
}

// extractRecordID converts a SurrealDB record ID into "table:id" form
func extractRecordID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return fmt.Sprintf("%s:%v", v.Table, v.ID)
	case *models.RecordID:
		if v != nil {
			return fmt.Sprintf("%s:%v", v.Table, v.ID)
		}
		return ""
	case map[string]interface{}:
		// {"tb": "post", "id": "abc"}
		if tb, ok := v["tb"].(string); ok {
			if rid, ok := v["id"]; ok {
				return fmt.Sprintf("%s:%v", tb, rid)
			}
		}
	case nil:
		return ""
	}
	return fmt.Sprintf("%v", id)
}

// parseTime parses time from the formats SurrealDB may hand back
func parseTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	case models.CustomDateTime:
		return t.Time
	case *models.CustomDateTime:
		if t != nil {
			return t.Time
		}
	}
	return time.Time{}
}

// getString reads a string field, tolerating absent or NONE values
func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

// firstRecord unwraps the {status, result} envelope returned by
// database.Database.Query and yields the first record of the first statement
func firstRecord(results []interface{}) (map[string]interface{}, bool) {
	if len(results) == 0 {
		return nil, false
	}
	var first interface{} = results[0]
	if resp, ok := first.(map[string]interface{}); ok {
		if _, wrapped := resp["status"]; wrapped {
			first = resp["result"]
		}
	}
	if rows, ok := first.([]interface{}); ok {
		if len(rows) == 0 {
			return nil, false
		}
		first = rows[0]
	}
	data, ok := first.(map[string]interface{})
	return data, ok
}

// allRecords unwraps every record of the first statement
func allRecords(results []interface{}) []map[string]interface{} {
	if len(results) == 0 {
		return nil
	}
	resp, ok := results[0].(map[string]interface{})
	if !ok {
		return nil
	}
	rows, _ := resp["result"].([]interface{})
	out := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		if data, ok := row.(map[string]interface{}); ok {
			out = append(out, data)
		}
	}
	return out
}
