package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/EO-DataHub/eodhp-directory-services/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPicker struct {
	mock.Mock
}

func (m *MockPicker) RequestPermission(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockPicker) Launch(ctx context.Context) (PickResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(PickResult), args.Error(1)
}

func newForm() *Form {
	f := NewForm(DefaultProfile(), "")
	f.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return f
}

func TestSubmit_Success(t *testing.T) {
	f := newForm()

	msg, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, SuccessMessage, msg)
}

func TestSubmit_EmptyEditableField(t *testing.T) {
	tests := []struct {
		name  string
		patch models.ProfilePatch
		field string
	}{
		{"age", models.ProfilePatch{Age: ptr("")}, "age"},
		{"phone", models.ProfilePatch{Phone: ptr("")}, "phone"},
		{"both", models.ProfilePatch{Age: ptr(""), Phone: ptr("")}, "age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newForm()
			f.Apply(tt.patch)

			msg, err := f.Submit()
			assert.Empty(t, msg)
			assert.ErrorIs(t, err, ErrMissingField)

			var ferr *FieldError
			require.ErrorAs(t, err, &ferr)
			assert.Equal(t, tt.field, ferr.Field)
		})
	}
}

func TestApply_OnlyTouchesEditableFields(t *testing.T) {
	f := newForm()

	p := f.Apply(models.ProfilePatch{Age: ptr("19")})
	assert.Equal(t, "19", p.Age)
	assert.Equal(t, "08036100715", p.Phone)
	assert.Equal(t, "Pascal Opara", p.Name)

	f.SetPhone("0800")
	f.SetAge("20")
	assert.Equal(t, "0800", f.Profile().Phone)
	assert.Equal(t, "20", f.Profile().Age)
}

func TestPickPhoto_PermissionDenied(t *testing.T) {
	f := newForm()
	picker := new(MockPicker)
	picker.On("RequestPermission", mock.Anything).Return(false, nil)

	p, err := f.PickPhoto(context.Background(), picker)

	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Equal(t, DefaultPhoto, p.Photo)
	picker.AssertNotCalled(t, "Launch", mock.Anything)
}

func TestPickPhoto_Success(t *testing.T) {
	f := newForm()
	picker := new(MockPicker)
	picker.On("RequestPermission", mock.Anything).Return(true, nil)
	picker.On("Launch", mock.Anything).Return(PickResult{Assets: []Asset{{URI: "file:///tmp/me.jpg"}}}, nil)

	p, err := f.PickPhoto(context.Background(), picker)

	require.NoError(t, err)
	assert.Equal(t, "file:///tmp/me.jpg?ts=1700000000000", p.Photo)
	assert.Equal(t, p.Photo, f.Profile().Photo)
	picker.AssertExpectations(t)
}

func TestPickPhoto_CancelledLeavesPhoto(t *testing.T) {
	f := newForm()
	picker := new(MockPicker)
	picker.On("RequestPermission", mock.Anything).Return(true, nil)
	picker.On("Launch", mock.Anything).Return(PickResult{Cancelled: true}, nil)

	p, err := f.PickPhoto(context.Background(), picker)

	require.NoError(t, err)
	assert.Equal(t, DefaultPhoto, p.Photo)
}

func TestPickPhoto_AssetWithoutURI(t *testing.T) {
	f := newForm()
	picker := new(MockPicker)
	picker.On("RequestPermission", mock.Anything).Return(true, nil)
	picker.On("Launch", mock.Anything).Return(PickResult{Assets: []Asset{{}}}, nil)

	_, err := f.PickPhoto(context.Background(), picker)

	assert.ErrorIs(t, err, ErrNoAssetURI)
	assert.Equal(t, DefaultPhoto, f.Profile().Photo)
}

func TestPickPhoto_PickerError(t *testing.T) {
	f := newForm()
	picker := new(MockPicker)
	picker.On("RequestPermission", mock.Anything).Return(true, nil)
	picker.On("Launch", mock.Anything).Return(PickResult{}, errors.New("camera roll unavailable"))

	_, err := f.PickPhoto(context.Background(), picker)

	assert.Error(t, err)
	assert.Equal(t, DefaultPhoto, f.Profile().Photo)
}

func TestPickPhoto_OneAtATime(t *testing.T) {
	f := newForm()
	entered := make(chan struct{})
	release := make(chan struct{})

	picker := new(MockPicker)
	picker.On("RequestPermission", mock.Anything).Run(func(mock.Arguments) {
		close(entered)
		<-release
	}).Return(false, nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := f.PickPhoto(context.Background(), picker)
		done <- err
	}()

	<-entered
	_, err := f.PickPhoto(context.Background(), picker)
	assert.ErrorIs(t, err, ErrPickInProgress)

	close(release)
	assert.ErrorIs(t, <-done, ErrPermissionDenied)
}

func TestPhotoLoadFailed(t *testing.T) {
	f := NewForm(models.Profile{Photo: "file:///broken.jpg"}, "https://example.com/default.png")

	p := f.PhotoLoadFailed()
	assert.Equal(t, "https://example.com/default.png", p.Photo)
}

func TestPickerOutcome(t *testing.T) {
	f := newForm()

	_, err := f.PickPhoto(context.Background(), PickerOutcome{Permission: "denied"})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	p, err := f.PickPhoto(context.Background(), PickerOutcome{Permission: "granted", URI: "https://cdn.example.com/a.png?size=2"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.png?size=2&ts=1700000000000", p.Photo)
}

func ptr(s string) *string { return &s }
