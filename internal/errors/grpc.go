package errors

import (
	"fmt"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Domain tags the ErrorInfo detail attached to converted statuses
const Domain = "github.com/KirkDiggler/rpg-roller"

var codeToGRPC = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeCanceled:           codes.Canceled,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeNotFound:           codes.NotFound,
	CodeAlreadyExists:      codes.AlreadyExists,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeOutOfRange:         codes.OutOfRange,
	CodeUnimplemented:      codes.Unimplemented,
	CodeInternal:           codes.Internal,
	CodeUnavailable:        codes.Unavailable,
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	if g, ok := codeToGRPC[c]; ok {
		return g
	}
	return codes.Unknown
}

// ToGRPCError converts an error to a gRPC status. Meta travels as an
// ErrorInfo detail with every value rendered as a string.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Meta) == 0 {
		return st.Err()
	}

	withInfo, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   customErr.Code.String(),
		Domain:   Domain,
		Metadata: stringMeta(customErr.Meta),
	})
	if detailErr != nil {
		return st.Err()
	}
	return withInfo.Err()
}

// ExitCode maps err onto a process exit status. Statuses follow the gRPC
// code numbering, so 3 is invalid input and 11 an out-of-range level.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	code := status.Code(ToGRPCError(err))
	if code == codes.OK {
		return int(codes.Unknown)
	}
	return int(code)
}

func stringMeta(meta map[string]any) map[string]string {
	out := make(map[string]string, len(meta))
	for k, v := range meta {
		switch val := v.(type) {
		case string:
			out[k] = val
		case int:
			out[k] = strconv.Itoa(val)
		default:
			out[k] = fmt.Sprint(val)
		}
	}
	return out
}
