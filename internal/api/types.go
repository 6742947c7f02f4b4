package api

// 错误响应体
type errorBody struct {
	Error string `json:"error"`
}

var notFound = errorBody{Error: "not found"}

// answer：一次查询的状态码与响应对象
type answer struct {
	status int
	body   any
	empty  bool
}

func found[T any](v T, ok bool) answer {
	if !ok {
		return answer{status: 404, body: notFound, empty: true}
	}
	return answer{status: 200, body: v}
}

func list[T any](v []T) answer {
	return answer{status: 200, body: v, empty: len(v) == 0}
}
