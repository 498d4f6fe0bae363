package shortcontext

import "context"

func New() (context.Context, func()) {
	return context.WithCancel(context.Background())
}
