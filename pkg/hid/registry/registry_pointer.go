package registry

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	"github.com/pamiq/pamiq-io/pkg/hid/types"
)

type PointerFactory interface {
	NewPointer(ctx context.Context, cfg types.PointerConfig) (types.Pointer, error)
}

type pointerFactoryWithPriority struct {
	Priority int
	PointerFactory
}

var pointerFactoryRegistry = map[reflect.Type]pointerFactoryWithPriority{}

func RegisterPointerFactory(
	priority int,
	pointerFactory PointerFactory,
) {
	t := reflect.ValueOf(pointerFactory).Type()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if _, ok := pointerFactoryRegistry[t]; ok {
		panic(fmt.Errorf("there is already registered a factory of Pointer of type %v", t))
	}
	pointerFactoryRegistry[t] = pointerFactoryWithPriority{
		Priority:       priority,
		PointerFactory: pointerFactory,
	}
}

func PointerFactories() []PointerFactory {
	var factoriesWithPriorities []pointerFactoryWithPriority
	for _, factory := range pointerFactoryRegistry {
		factoriesWithPriorities = append(factoriesWithPriorities, factory)
	}
	sort.Slice(factoriesWithPriorities, func(i, j int) bool {
		return factoriesWithPriorities[i].Priority > factoriesWithPriorities[j].Priority
	})

	var factories []PointerFactory
	for _, factory := range factoriesWithPriorities {
		factories = append(factories, factory.PointerFactory)
	}

	return factories
}
