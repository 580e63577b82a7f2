package models

import "strings"

// イシュータイプ（分類に使う完全一致の文字列）
const (
	IssueTypeEpic    = "Epic"
	IssueTypeStory   = "Story"
	IssueTypeSubtask = "Subtask"
)

// よく使うフィールド名
const (
	FieldKey       = "key"
	FieldURL       = "url"
	FieldIssueType = "issuetype"
	FieldStatus    = "status"
	FieldSubtasks  = "subtasks"
)

// ValueKind は FieldValue が保持する値の種類です
type ValueKind int

const (
	// KindAbsent は値が存在しないことを表します（JSON では null）
	KindAbsent ValueKind = iota
	KindString
	KindList
)

// FieldValue はイシューの1フィールドの値です。
// 文字列・値なし・文字列リスト（subtasks のみ）のいずれかを保持します。
type FieldValue struct {
	kind ValueKind
	str  string
	list []string
}

// StringValue は文字列値を作成します（空文字列も「値あり」です）
func StringValue(s string) FieldValue {
	return FieldValue{kind: KindString, str: s}
}

// AbsentValue は「値なし」を作成します
func AbsentValue() FieldValue {
	return FieldValue{kind: KindAbsent}
}

// ListValue は文字列リスト値を作成します
func ListValue(items []string) FieldValue {
	copied := make([]string, len(items))
	copy(copied, items)
	return FieldValue{kind: KindList, list: copied}
}

// Kind は値の種類を返します
func (v FieldValue) Kind() ValueKind { return v.kind }

// IsAbsent は値なしの場合 true を返します
func (v FieldValue) IsAbsent() bool { return v.kind == KindAbsent }

// AsString は文字列値を返します。文字列以外の場合は ok=false です。
func (v FieldValue) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsList はリスト値のコピーを返します。リスト以外の場合は ok=false です。
func (v FieldValue) AsList() ([]string, bool) {
	if v.kind != KindList {
		return nil, false
	}
	copied := make([]string, len(v.list))
	copy(copied, v.list)
	return copied, true
}

// Text は CSV やレポート用の表示文字列を返します（値なしは空文字列）
func (v FieldValue) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindList:
		return strings.Join(v.list, ", ")
	default:
		return ""
	}
}

// Field はフィールド名と値の組です
type Field struct {
	Name  string
	Value FieldValue
}

// Issue は表の1行から抽出したイシューです。
// フィールドは抽出順を保持し、作成後は変更されません。
type Issue struct {
	fields []Field
	index  map[string]int
}

// Get はフィールド値を返します
func (i Issue) Get(name string) (FieldValue, bool) {
	idx, ok := i.index[name]
	if !ok {
		return FieldValue{}, false
	}
	return i.fields[idx].Value, true
}

// GetString は文字列フィールドを返します。存在しない・文字列でない場合は空文字列です。
func (i Issue) GetString(name string) string {
	v, ok := i.Get(name)
	if !ok {
		return ""
	}
	s, _ := v.AsString()
	return s
}

// Fields は抽出順のフィールド一覧のコピーを返します
func (i Issue) Fields() []Field {
	copied := make([]Field, len(i.fields))
	copy(copied, i.fields)
	return copied
}

// Len はフィールド数を返します
func (i Issue) Len() int { return len(i.fields) }

// Key はイシューキーを返します
func (i Issue) Key() string { return i.GetString(FieldKey) }

// IssueType は前後の空白を除いたイシュータイプを返します
func (i Issue) IssueType() string {
	return strings.TrimSpace(i.GetString(FieldIssueType))
}

// IssueBuilder は Issue を組み立てます
type IssueBuilder struct {
	fields []Field
	index  map[string]int
}

// NewIssueBuilder は空のビルダーを作成します
func NewIssueBuilder() *IssueBuilder {
	return &IssueBuilder{index: make(map[string]int)}
}

// Set はフィールドを設定します。同名フィールドは最初の位置のまま値を上書きします。
func (b *IssueBuilder) Set(name string, value FieldValue) *IssueBuilder {
	if idx, ok := b.index[name]; ok {
		b.fields[idx].Value = value
		return b
	}
	b.index[name] = len(b.fields)
	b.fields = append(b.fields, Field{Name: name, Value: value})
	return b
}

// Build は Issue を作成し、ビルダーを空の状態に戻します
func (b *IssueBuilder) Build() Issue {
	issue := Issue{fields: b.fields, index: b.index}
	b.fields = nil
	b.index = make(map[string]int)
	return issue
}

// Summary は出力ドキュメントの集計情報です
type Summary struct {
	TotalIssues int    `json:"total_issues"`
	Epics       int    `json:"epics"`
	Stories     int    `json:"stories"`
	Subtasks    int    `json:"subtasks"`
	Other       int    `json:"other"`
	ExportDate  string `json:"export_date"`
}

// Organized はイシュータイプごとに分類したイシューです
type Organized struct {
	Epics    []Issue `json:"epics"`
	Stories  []Issue `json:"stories"`
	Subtasks []Issue `json:"subtasks"`
	Other    []Issue `json:"other"`
}

// Document は JSON として書き出すドキュメント全体です
type Document struct {
	Summary   Summary   `json:"summary"`
	Issues    []Issue   `json:"issues"`
	Organized Organized `json:"organized"`
}
