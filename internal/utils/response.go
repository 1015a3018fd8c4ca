package utils

import "swim-shop-api/internal/constant"

// Response is the envelope every endpoint answers with.
type Response struct {
	Code    int         `json:"code"`
	Msg     string      `json:"msg"`
	Data    interface{} `json:"data,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
}

func Success(data interface{}) Response {
	return Response{
		Code: constant.CodeSuccess,
		Msg:  "Success",
		Data: data,
	}
}

// SuccessMsg acknowledges without payload.
func SuccessMsg(msg string) Response {
	return Response{Code: constant.CodeSuccess, Msg: msg}
}

func Error(code int) Response {
	if info, exists := constant.GetErrorInfo(code); exists {
		return Response{Code: code, Msg: info.Msg}
	}
	return Response{Code: code, Msg: "Unknown error"}
}

func ErrorWithTrace(code int, traceID string) Response {
	r := Error(code)
	r.TraceID = traceID
	return r
}

func CustomError(code int, message string) Response {
	return Response{Code: code, Msg: message}
}

func CustomErrorWithTrace(code int, message string, traceID string) Response {
	return Response{Code: code, Msg: message, TraceID: traceID}
}
