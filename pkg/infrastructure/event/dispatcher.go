package event

import (
	"reflect"

	log "github.com/sirupsen/logrus"

	"sales/pkg/domain/service"
)

// LogDispatcher records every domain event as a structured log line. The
// event's exported fields become log fields.
type LogDispatcher struct {
	logger log.FieldLogger
}

var _ service.EventDispatcher = (*LogDispatcher)(nil)

func NewLogDispatcher(logger log.FieldLogger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Dispatch(event service.Event) error {
	d.logger.WithFields(eventFields(event)).Info("domain event")
	return nil
}

func eventFields(event service.Event) log.Fields {
	fields := log.Fields{"event": event.Type()}

	v := reflect.ValueOf(event)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return fields
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		fields[t.Field(i).Name] = v.Field(i).Interface()
	}
	return fields
}
