package meshtesting

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-meshdofs/dofs"
	"github.com/forestrie/go-meshdofs/fe"
	"github.com/forestrie/go-meshdofs/tria"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
}

type TestConfig struct {
	TestLabelPrefix string
	// LogLevel defaults to NOOP
	LogLevel string
	// Checks is passed to every handler the context creates.
	Checks bool
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	return TestContext{
		T:   t,
		Log: logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// NewHandler returns a handler on tr with el selected.
func (c *TestContext) NewHandler(tr *tria.Triangulation, el *fe.FiniteElement, checks bool) *dofs.Handler {
	h, err := dofs.NewHandler(tr, dofs.WithLogger(c.Log), dofs.WithChecks(checks))
	require.NoError(c.T, err)
	require.NoError(c.T, h.SelectElement(el))
	return h
}

// NumberedHandler returns a handler on tr with el selected and every dof
// assigned by Enumerate.
func (c *TestContext) NumberedHandler(tr *tria.Triangulation, el *fe.FiniteElement) *dofs.Handler {
	h := c.NewHandler(tr, el, true)
	_, err := Enumerate(h)
	require.NoError(c.T, err)
	return h
}

// Element builds a descriptor with explicit counts.
func Element(dim, perVertex, perLine, perQuad int) *fe.FiniteElement {
	return &fe.FiniteElement{
		Name:          "test",
		Dim:           dim,
		DofsPerVertex: perVertex,
		DofsPerLine:   perLine,
		DofsPerQuad:   perQuad,
	}
}
