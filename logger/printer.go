package logger

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"

	"github.com/philipp01105/prettylog/core"
)

const (
	emptyMessage = "Empty/NULL log message"
	emptyJSON    = "Empty/Null json content"
	invalidJSON  = "Invalid Json"
	emptyXML     = "Empty/Null xml content"
	invalidXML   = "Invalid xml"

	// indentUnit is the nesting indentation of JSON and XML output
	indentUnit = "  "
)

var jsonParsers fastjson.ParserPool

// Err logs msg together with err at error level. err is printed with %+v,
// so errors carrying a stack trace print it as well.
func (l *Logger) Err(err error, msg string) error {
	switch {
	case err != nil && msg != "":
		msg = msg + " : " + fmt.Sprintf("%+v", err)
	case err != nil:
		msg = fmt.Sprintf("%+v", err)
	case msg == "":
		msg = emptyMessage
	}
	return l.log(core.ErrorLevel, msg)
}

// JSON pretty prints a JSON object or array at debug level
func (l *Logger) JSON(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return l.log(core.DebugLevel, emptyJSON)
	}

	p := jsonParsers.Get()
	defer jsonParsers.Put(p)

	v, err := p.Parse(s)
	if err != nil {
		return l.log(core.ErrorLevel, invalidJSON)
	}
	if t := v.Type(); t != fastjson.TypeObject && t != fastjson.TypeArray {
		return l.log(core.ErrorLevel, invalidJSON)
	}

	out := appendIndentedJSON(nil, v, 0)
	return l.log(core.DebugLevel, string(out))
}

// XML pretty prints an XML document at debug level
func (l *Logger) XML(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return l.log(core.DebugLevel, emptyXML)
	}

	out, err := indentXML(s)
	if err != nil {
		return l.log(core.ErrorLevel, invalidXML)
	}
	return l.log(core.DebugLevel, out)
}

// Object logs a dump of v at debug level. Structs are printed with their
// field names.
func (l *Logger) Object(v interface{}) error {
	if v == nil {
		return l.log(core.DebugLevel, "null")
	}

	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct {
		return l.log(core.DebugLevel, fmt.Sprintf("%+v", v))
	}
	return l.log(core.DebugLevel, fmt.Sprintf("%v", v))
}

func appendIndentedJSON(dst []byte, v *fastjson.Value, depth int) []byte {
	switch v.Type() {
	case fastjson.TypeObject:
		o, _ := v.Object()
		if o.Len() == 0 {
			return append(dst, "{}"...)
		}
		dst = append(dst, '{')
		first := true
		var a fastjson.Arena
		o.Visit(func(key []byte, child *fastjson.Value) {
			if !first {
				dst = append(dst, ',')
			}
			first = false
			dst = appendIndent(dst, depth+1)
			dst = a.NewStringBytes(key).MarshalTo(dst)
			dst = append(dst, ':', ' ')
			dst = appendIndentedJSON(dst, child, depth+1)
		})
		dst = appendIndent(dst, depth)
		return append(dst, '}')
	case fastjson.TypeArray:
		items, _ := v.Array()
		if len(items) == 0 {
			return append(dst, "[]"...)
		}
		dst = append(dst, '[')
		for i, item := range items {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendIndent(dst, depth+1)
			dst = appendIndentedJSON(dst, item, depth+1)
		}
		dst = appendIndent(dst, depth)
		return append(dst, ']')
	default:
		return v.MarshalTo(dst)
	}
}

func appendIndent(dst []byte, depth int) []byte {
	dst = append(dst, '\n')
	for range depth {
		dst = append(dst, indentUnit...)
	}
	return dst
}

// indentXML re-encodes s with one element per line. Namespace prefixes are
// kept as written.
func indentXML(s string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(s))
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", indentUnit)

	hasRoot := false
	for {
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.Wrap(err, "logger: decode xml")
		}

		switch t := tok.(type) {
		case xml.CharData:
			if len(bytes.TrimSpace(t)) == 0 {
				continue
			}
		case xml.StartElement:
			hasRoot = true
			t.Name = prefixedName(t.Name)
			attrs := make([]xml.Attr, len(t.Attr))
			for i, attr := range t.Attr {
				attrs[i] = xml.Attr{Name: prefixedName(attr.Name), Value: attr.Value}
			}
			t.Attr = attrs
			tok = t
		case xml.EndElement:
			t.Name = prefixedName(t.Name)
			tok = t
		}

		if err := enc.EncodeToken(tok); err != nil {
			return "", errors.Wrap(err, "logger: encode xml")
		}
	}

	if !hasRoot {
		return "", errors.New("logger: xml has no root element")
	}
	if err := enc.Close(); err != nil {
		return "", errors.Wrap(err, "logger: encode xml")
	}
	return buf.String(), nil
}

func prefixedName(n xml.Name) xml.Name {
	if n.Space == "" {
		return n
	}
	return xml.Name{Local: n.Space + ":" + n.Local}
}
