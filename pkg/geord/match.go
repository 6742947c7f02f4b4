package geord

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fold：大小写归一（小写），用于名称比较
// 约束：Caser 有状态，不能跨 goroutine 共享，因此每次调用新建。
func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

// codeSet：排除条件集合；原样比较，不做 trim
func codeSet(codes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}

func filter[T any](rows []T, keep func(T) bool) []T {
	out := make([]T, 0)
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func first[T any](rows []T, match func(T) bool) (T, bool) {
	for _, r := range rows {
		if match(r) {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// byCode：按编码精确查找，输入先 trim，空输入视为未命中
func byCode[T any](rows []T, code string, codeOf func(T) string) (T, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		var zero T
		return zero, false
	}
	return first(rows, func(r T) bool { return codeOf(r) == code })
}

// byName：名称大小写不敏感精确匹配
func byName[T any](rows []T, name string, nameOf func(T) string) (T, bool) {
	name = fold(strings.TrimSpace(name))
	if name == "" {
		var zero T
		return zero, false
	}
	return first(rows, func(r T) bool { return fold(nameOf(r)) == name })
}

// byNameLike：名称包含片段（大小写不敏感），保持表内顺序
func byNameLike[T any](rows []T, fragment string, nameOf func(T) string) []T {
	fragment = fold(strings.TrimSpace(fragment))
	if fragment == "" {
		return []T{}
	}
	return filter(rows, func(r T) bool { return strings.Contains(fold(nameOf(r)), fragment) })
}

// byParent：按上级编码过滤，输入 trim，空输入返回空集
func byParent[T any](rows []T, parent string, parentOf func(T) string) []T {
	parent = strings.TrimSpace(parent)
	if parent == "" {
		return []T{}
	}
	return filter(rows, func(r T) bool { return parentOf(r) == parent })
}

// excluding：返回 key 不在 codes 中的记录（补集）
func excluding[T any](rows []T, codes []string, keyOf func(T) string) []T {
	set := codeSet(codes)
	return filter(rows, func(r T) bool {
		_, hit := set[keyOf(r)]
		return !hit
	})
}

// clone：返回新分配的非 nil 切片
func clone[T any](rows []T) []T {
	return append(make([]T, 0, len(rows)), rows...)
}
