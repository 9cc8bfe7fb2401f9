package queryparams

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Params is the recognized subset of a list request's query string,
// parsed from the flat key/value map the router exposes.
type Params struct {
	Search    string
	Filter    map[string]interface{}
	From      string
	To        string
	DateField string
	Sort      string
	Order     string
	All       bool
	Limit     int
	Page      int
}

// Parse extracts the recognized parameters from a flat query map.
// Filters are accepted in three shapes:
//
//	filter[city]=Yamoussoukro
//	filter[lat][operator]=gte&filter[lat][value]=5
//	filter={"city":"Yamoussoukro","lat":{"operator":"gte","value":5}}
//
// A filter value that fails to decode degrades to an empty filter set.
func Parse(values map[string]string) Params {
	p := Params{
		Search:    strings.TrimSpace(values["search"]),
		From:      values["from"],
		To:        values["to"],
		DateField: values["dateField"],
		Sort:      values["sort"],
		Order:     values["order"],
		Filter:    map[string]interface{}{},
	}

	if _, ok := values["all"]; ok {
		p.All = true
	}
	if v, ok := values["limit"]; ok {
		p.Limit, _ = strconv.Atoi(v)
	}
	if v, ok := values["page"]; ok {
		p.Page, _ = strconv.Atoi(v)
	}

	if raw, ok := values["filter"]; ok {
		var decoded map[string]interface{}
		if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
			p.Filter = decoded
		}
	}

	operatorPairs := map[string]map[string]interface{}{}
	for key, value := range values {
		field, sub, ok := filterKey(key)
		if !ok {
			continue
		}
		if sub == "" {
			p.Filter[field] = value
			continue
		}
		if operatorPairs[field] == nil {
			operatorPairs[field] = map[string]interface{}{}
		}
		operatorPairs[field][sub] = value
	}
	for field, pair := range operatorPairs {
		p.Filter[field] = pair
	}

	return p
}

// filterKey splits "filter[field]" or "filter[field][sub]" into its parts.
func filterKey(key string) (field, sub string, ok bool) {
	if !strings.HasPrefix(key, "filter[") {
		return "", "", false
	}
	rest := key[len("filter["):]
	end := strings.Index(rest, "]")
	if end <= 0 {
		return "", "", false
	}
	field = rest[:end]
	rest = rest[end+1:]
	if rest == "" {
		return field, "", true
	}
	if strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]") {
		return field, rest[1 : len(rest)-1], true
	}
	return "", "", false
}

// operatorPair reports whether a filter value is a structured
// {operator, value} pair rather than a scalar.
func operatorPair(value interface{}) (op string, val interface{}, ok bool) {
	m, isMap := value.(map[string]interface{})
	if !isMap {
		return "", nil, false
	}
	rawOp, hasOp := m["operator"]
	rawVal, hasVal := m["value"]
	if !hasOp || !hasVal {
		return "", nil, false
	}
	opStr, isStr := rawOp.(string)
	if !isStr {
		return "", nil, false
	}
	return opStr, rawVal, true
}
