package set

import (
	"io"

	"github.com/denismitr/bstset/binarytree"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type (
	config[T any] struct {
		logger   logrus.FieldLogger
		freeList *binarytree.FreeList[T]
	}

	Option[T any] func(c *config[T])
)

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// WithLogger sets the logger that contract violations are reported to
// at debug level. By default they are not logged.
func WithLogger[T any](l logrus.FieldLogger) Option[T] {
	return func(c *config[T]) {
		c.logger = l
	}
}

// WithFreeList makes the set recycle tree nodes through fl, which may be
// shared with other sets.
func WithFreeList[T any](fl *binarytree.FreeList[T]) Option[T] {
	return func(c *config[T]) {
		c.freeList = fl
	}
}

func newConfig[T any](options ...Option[T]) config[T] {
	c := config[T]{logger: discard}
	for _, o := range options {
		o(&c)
	}

	if c.logger == nil {
		c.logger = discard
	}
	if c.freeList == nil {
		c.freeList = binarytree.NewFreeList[T](binarytree.DefaultFreeListSize)
	}

	return c
}

func (c config[T]) logViolation(op string, fields logrus.Fields, err error) {
	c.logger.WithFields(fields).WithField("op", op).WithError(err).Debug("set contract violation")
}

func (c config[T]) violation(op string, fields logrus.Fields, err error) error {
	c.logViolation(op, fields, err)

	if item, ok := fields["element"]; ok {
		return errors.Wrapf(err, "%s %v", op, item)
	}
	return errors.Wrap(err, op)
}
