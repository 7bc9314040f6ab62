package registry

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	"github.com/pamiq/pamiq-io/pkg/audio/types"
)

type OutputFactory interface {
	NewOutput(ctx context.Context, cfg types.OutputConfig) (types.Output, error)
}

type outputFactoryWithPriority struct {
	Priority int
	OutputFactory
}

var outputFactoryRegistry = map[reflect.Type]outputFactoryWithPriority{}

func RegisterOutputFactory(
	priority int,
	outputFactory OutputFactory,
) {
	t := reflect.ValueOf(outputFactory).Type()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if _, ok := outputFactoryRegistry[t]; ok {
		panic(fmt.Errorf("there is already registered a factory of Output of type %v", t))
	}
	outputFactoryRegistry[t] = outputFactoryWithPriority{
		Priority:      priority,
		OutputFactory: outputFactory,
	}
}

func OutputFactories() []OutputFactory {
	var factoriesWithPriorities []outputFactoryWithPriority
	for _, factory := range outputFactoryRegistry {
		factoriesWithPriorities = append(factoriesWithPriorities, factory)
	}
	sort.Slice(factoriesWithPriorities, func(i, j int) bool {
		return factoriesWithPriorities[i].Priority > factoriesWithPriorities[j].Priority
	})

	var factories []OutputFactory
	for _, factory := range factoriesWithPriorities {
		factories = append(factories, factory.OutputFactory)
	}

	return factories
}
