package registry

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	"github.com/pamiq/pamiq-io/pkg/video/types"
)

type CaptureFactory interface {
	NewCapture(ctx context.Context, cfg types.CaptureConfig) (types.Capture, error)
}

type captureFactoryWithPriority struct {
	Priority int
	CaptureFactory
}

var captureFactoryRegistry = map[reflect.Type]captureFactoryWithPriority{}

func RegisterCaptureFactory(
	priority int,
	captureFactory CaptureFactory,
) {
	t := reflect.ValueOf(captureFactory).Type()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if _, ok := captureFactoryRegistry[t]; ok {
		panic(fmt.Errorf("there is already registered a factory of Capture of type %v", t))
	}
	captureFactoryRegistry[t] = captureFactoryWithPriority{
		Priority:       priority,
		CaptureFactory: captureFactory,
	}
}

func CaptureFactories() []CaptureFactory {
	var factoriesWithPriorities []captureFactoryWithPriority
	for _, factory := range captureFactoryRegistry {
		factoriesWithPriorities = append(factoriesWithPriorities, factory)
	}
	sort.Slice(factoriesWithPriorities, func(i, j int) bool {
		return factoriesWithPriorities[i].Priority > factoriesWithPriorities[j].Priority
	})

	var factories []CaptureFactory
	for _, factory := range factoriesWithPriorities {
		factories = append(factories, factory.CaptureFactory)
	}

	return factories
}
