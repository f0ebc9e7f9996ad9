// Package logic 提供谓词组合子，用于搭配 transform.Filter / TakeWhile 等
// 以小谓词组合出复杂条件。
package logic

// Both 合取：两个谓词都成立才成立。
func Both[T any](p1, p2 func(T) bool) func(T) bool {
	return func(v T) bool { return p1(v) && p2(v) }
}

// Either 析取：任一谓词成立即成立。
func Either[T any](p1, p2 func(T) bool) func(T) bool {
	return func(v T) bool { return p1(v) || p2(v) }
}

// Complement 取反。
func Complement[T any](p func(T) bool) func(T) bool {
	return func(v T) bool { return !p(v) }
}

// AllPass 多路合取：全部谓词成立才成立，遇假短路。
func AllPass[T any](preds ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// AnyPass 多路析取：任一谓词成立即成立，遇真短路。
func AnyPass[T any](preds ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range preds {
			if p(v) {
				return true
			}
		}
		return false
	}
}
