package registry

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	"github.com/pamiq/pamiq-io/pkg/hid/types"
)

type KeyboardFactory interface {
	NewKeyboard(ctx context.Context, cfg types.KeyboardConfig) (types.Keyboard, error)
}

type keyboardFactoryWithPriority struct {
	Priority int
	KeyboardFactory
}

var keyboardFactoryRegistry = map[reflect.Type]keyboardFactoryWithPriority{}

func RegisterKeyboardFactory(
	priority int,
	keyboardFactory KeyboardFactory,
) {
	t := reflect.ValueOf(keyboardFactory).Type()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if _, ok := keyboardFactoryRegistry[t]; ok {
		panic(fmt.Errorf("there is already registered a factory of Keyboard of type %v", t))
	}
	keyboardFactoryRegistry[t] = keyboardFactoryWithPriority{
		Priority:        priority,
		KeyboardFactory: keyboardFactory,
	}
}

func KeyboardFactories() []KeyboardFactory {
	var factoriesWithPriorities []keyboardFactoryWithPriority
	for _, factory := range keyboardFactoryRegistry {
		factoriesWithPriorities = append(factoriesWithPriorities, factory)
	}
	sort.Slice(factoriesWithPriorities, func(i, j int) bool {
		return factoriesWithPriorities[i].Priority > factoriesWithPriorities[j].Priority
	})

	var factories []KeyboardFactory
	for _, factory := range factoriesWithPriorities {
		factories = append(factories, factory.KeyboardFactory)
	}

	return factories
}
