package api

import (
	"context"
	"errors"

	"github.com/fulldump/box"

	"github.com/fulldump/crosstable/api/apitablev1"
)

var ErrReadOnly = errors.New("read only")

// ReadOnly rejects every action flagged as mutating.
func ReadOnly(enabled bool) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {

			if !enabled {
				next(ctx)
				return
			}

			action := box.GetBoxContext(ctx).Action
			if action != nil && action.GetAttribute(apitablev1.AttrMutates) == true {
				box.SetError(ctx, ErrReadOnly)
				return
			}

			next(ctx)
		}
	}
}
