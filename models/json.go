package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON は値の種類に応じて文字列・null・配列を出力します
func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return marshalNoEscape(v.str)
	case KindList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return marshalNoEscape(v.list)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON は null・文字列・文字列配列を読み込みます
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*v = AbsentValue()
		return nil
	}

	if trimmed[0] == '[' {
		var items []string
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return fmt.Errorf("リスト値の読み込みエラー: %w", err)
		}
		*v = ListValue(items)
		return nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return fmt.Errorf("文字列値の読み込みエラー: %w", err)
	}
	*v = StringValue(s)
	return nil
}

// MarshalJSON はフィールドを抽出順のまま JSON オブジェクトとして出力します
func (i Issue) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for idx, field := range i.fields {
		if idx > 0 {
			buf.WriteByte(',')
		}
		name, err := marshalNoEscape(field.Name)
		if err != nil {
			return nil, err
		}
		value, err := field.Value.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("フィールド %q の出力エラー: %w", field.Name, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON は JSON オブジェクトのキー順を保ったまま読み込みます
func (i *Issue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("イシューの読み込みエラー: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("イシューはJSONオブジェクトである必要があります")
	}

	builder := NewIssueBuilder()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("フィールド名の読み込みエラー: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("不正なフィールド名: %v", tok)
		}

		var value FieldValue
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("フィールド %q の読み込みエラー: %w", name, err)
		}
		builder.Set(name, value)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("イシューの読み込みエラー: %w", err)
	}

	*i = builder.Build()
	return nil
}

// HTML 用のエスケープ（<, >, &）をせずに JSON へ変換します
func marshalNoEscape(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
