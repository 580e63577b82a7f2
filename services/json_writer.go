package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"jirabacklog/models"
)

// EncodeDocument はドキュメントをインデント付きの JSON に変換します。
// 日本語などの非 ASCII 文字や <, >, & はエスケープせずそのまま出力します。
func EncodeDocument(doc *models.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("JSONエンコードエラー: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDocument はドキュメントを JSON ファイルとして書き出します。
// 一時ファイルに書いてからリネームするため、途中で失敗しても既存ファイルは壊れません。
func WriteDocument(path string, doc *models.Document) error {
	data, err := EncodeDocument(doc)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &IOError{Op: "JSONファイル作成", Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &IOError{Op: "JSON書き込み", Path: path, Err: err}
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &IOError{Op: "JSONファイル作成", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &IOError{Op: "JSON書き込み", Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &IOError{Op: "JSONファイル保存", Path: path, Err: err}
	}

	return nil
}

// LoadDocument は書き出し済みの JSON ドキュメントを読み込みます
func LoadDocument(path string) (*models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "JSON読み込み", Path: path, Err: err}
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("JSONデコードエラー (%s): %w", path, err)
	}
	return &doc, nil
}
