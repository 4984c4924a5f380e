package provider

import (
	"context"

	"github.com/mwantia/vfsname/data"
)

// OnCallRefreshFileObject refreshes the inner file object before every
// call that observes or changes it.
type OnCallRefreshFileObject struct {
	*DecoratedFileObject
}

// NewOnCallRefreshFileObject wraps file.
func NewOnCallRefreshFileObject(file FileObject) *OnCallRefreshFileObject {
	o := &OnCallRefreshFileObject{}
	o.DecoratedFileObject = NewDecoratedFileObject(file, o)

	return o
}

func (o *OnCallRefreshFileObject) refresh(ctx context.Context) error {
	return o.inner.Refresh(ctx)
}

func (o *OnCallRefreshFileObject) Exists(ctx context.Context) (bool, error) {
	if err := o.refresh(ctx); err != nil {
		return false, err
	}
	return o.inner.Exists(ctx)
}

func (o *OnCallRefreshFileObject) Type(ctx context.Context) (data.FileType, error) {
	if err := o.refresh(ctx); err != nil {
		return data.FileTypeImaginary, err
	}
	return o.inner.Type(ctx)
}

func (o *OnCallRefreshFileObject) Children(ctx context.Context) ([]FileObject, error) {
	if err := o.refresh(ctx); err != nil {
		return nil, err
	}
	return o.inner.Children(ctx)
}

func (o *OnCallRefreshFileObject) Child(ctx context.Context, baseName string) (FileObject, error) {
	if err := o.refresh(ctx); err != nil {
		return nil, err
	}
	return o.inner.Child(ctx, baseName)
}

func (o *OnCallRefreshFileObject) ResolveFile(ctx context.Context, path string, scope data.NameScope) (FileObject, error) {
	if err := o.refresh(ctx); err != nil {
		return nil, err
	}
	return o.inner.ResolveFile(ctx, path, scope)
}

func (o *OnCallRefreshFileObject) CreateFolder(ctx context.Context) error {
	if err := o.refresh(ctx); err != nil {
		return err
	}
	return o.inner.CreateFolder(ctx)
}

func (o *OnCallRefreshFileObject) CreateFile(ctx context.Context) error {
	if err := o.refresh(ctx); err != nil {
		return err
	}
	return o.inner.CreateFile(ctx)
}

func (o *OnCallRefreshFileObject) Delete(ctx context.Context) (bool, error) {
	if err := o.refresh(ctx); err != nil {
		return false, err
	}
	return o.inner.Delete(ctx)
}
