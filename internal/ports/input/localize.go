package input

import "context"

type LocalizeUseCase interface {
	Localize(ctx context.Context, path string) error
}
