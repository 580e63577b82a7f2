package services

import "fmt"

// MissingTableError はイシューテーブルが見つからない場合のエラーです。
// このエラーが返された場合、出力ファイルは作成されません。
type MissingTableError struct {
	TableID string
}

func (e *MissingTableError) Error() string {
	return fmt.Sprintf("イシューテーブルが見つかりません: table#%s", e.TableID)
}

// IOError はファイルの読み書きに失敗した場合のエラーです
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%sエラー (%s): %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
