package loader_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"market-board/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
	models  []any
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	if f.loadErr != nil {
		return f.loadErr
	}
	f.loaded = true
	app.Get("/"+f.name, func(c *fiber.Ctx) error { return c.SendString(f.name) })
	return nil
}

type modelFeature struct{ fakeFeature }

func (f *modelFeature) Models() []any { return f.models }

func TestManager_LoadAll(t *testing.T) {
	on := &fakeFeature{name: "on", enabled: true}
	off := &fakeFeature{name: "off", enabled: false}

	mgr := loader.NewManager(nil)
	mgr.Register(on)
	mgr.Register(off)

	app := fiber.New()
	require.NoError(t, mgr.LoadAll(app))

	assert.True(t, on.loaded)
	assert.False(t, off.loaded)

	resp, err := app.Test(httptest.NewRequest("GET", "/on", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/off", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestManager_LoadAllError(t *testing.T) {
	mgr := loader.NewManager(nil)
	mgr.Register(&fakeFeature{name: "broken", enabled: true, loadErr: errors.New("nope")})
	after := &fakeFeature{name: "after", enabled: true}
	mgr.Register(after)

	err := mgr.LoadAll(fiber.New())
	assert.ErrorContains(t, err, "broken")
	assert.False(t, after.loaded)
}

func TestManager_RegisterDuplicate(t *testing.T) {
	mgr := loader.NewManager(nil)
	mgr.Register(&fakeFeature{name: "dup"})
	assert.Panics(t, func() { mgr.Register(&fakeFeature{name: "dup"}) })
}

func TestManager_Models(t *testing.T) {
	type a struct{}
	type b struct{}

	mgr := loader.NewManager(nil)
	mgr.Register(&modelFeature{fakeFeature{name: "one", models: []any{&a{}}}})
	mgr.Register(&fakeFeature{name: "plain"})
	mgr.Register(&modelFeature{fakeFeature{name: "two", enabled: false, models: []any{&b{}}}})

	models := mgr.Models()
	assert.Len(t, models, 2)
	assert.Len(t, mgr.Features(), 3)
}
