package stockmarket

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

/*
	ImportCatalog reads a vendor reference-data export such as:

	{
	    "exchange": "GBCE",
	    "data": {
	        "securities": [
	            {"symbol": "TEA", "type": "Common", "lastDividend": 0, "parValue": 100},
	            {"symbol": "GIN", "type": "Preferred", "lastDividend": 8, "fixedDividend": 2, "parValue": 100}
	        ]
	    }
	}
*/
func ImportCatalog(r io.Reader) (*Catalog, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("could not parse reference data: %w", err)
	}

	path := "$.data.securities"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error querying reference data: %q %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("error querying reference data: %q is not a list, got %T", path, jval)
	}

	currency := ReferenceCurrency
	// the export's currency is optional, fall back to the exchange default.
	if jcur, err := jsonpath.Get("$.currency", jobj); err == nil {
		if c, ok := jcur.(string); ok && c != "" {
			currency = c
		}
	}

	securities := make([]Security, 0, len(jlist))
	for i, entry := range jlist {
		fields, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("security entry %d is not an object, got %T", i, entry)
		}
		sec, err := importSecurity(fields, currency)
		if err != nil {
			return nil, fmt.Errorf("security entry %d: %w", i, err)
		}
		securities = append(securities, sec)
	}
	return NewCatalog(securities...)
}

func importSecurity(fields map[string]any, currency string) (Security, error) {
	symbol, ok := fields["symbol"].(string)
	if !ok {
		return Security{}, fmt.Errorf("missing or invalid symbol %v", fields["symbol"])
	}
	typeName, ok := fields["type"].(string)
	if !ok {
		return Security{}, fmt.Errorf("missing or invalid type %v", fields["type"])
	}
	// vendor exports capitalize the type names.
	kind, err := ParseSecurityType(strings.ToLower(typeName))
	if err != nil {
		return Security{}, err
	}

	lastDividend, err := importNumber(fields, "lastDividend")
	if err != nil {
		return Security{}, err
	}
	parValue, err := importNumber(fields, "parValue")
	if err != nil {
		return Security{}, err
	}

	if kind == Preferred {
		fixedDividend, err := importNumber(fields, "fixedDividend")
		if err != nil {
			return Security{}, err
		}
		return NewPreferred(symbol, M(lastDividend, currency), P(fixedDividend), M(parValue, currency)), nil
	}
	return NewCommon(symbol, M(lastDividend, currency), M(parValue, currency)), nil
}

func importNumber(fields map[string]any, key string) (float64, error) {
	jval, ok := fields[key]
	if !ok {
		return 0, fmt.Errorf("missing field %q", key)
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("field %q is not a number, got %T", key, jval)
	}
	return val, nil
}
