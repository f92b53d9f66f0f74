package logging

import (
	"strings"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// UseLoggingInterface makes fx itself log its events to the instance
// of logging.Interface inside the container being built.
// Requires logging.Interface to be provided within the resulting fx.App.
var UseLoggingInterface fx.Option = fx.WithLogger(
	func(logger Interface) fxevent.Logger {
		return &fxLoggerAdapter{Interface: logger}
	},
)

type fxLoggerAdapter struct{ Interface }

// LogEvent logs an fx app event to the underlying logging.Interface.
func (f fxLoggerAdapter) LogEvent(event fxevent.Event) {
	log := f.Interface.WithField("fx", "event")

	switch e := event.(type) {
	case *fxevent.OnStartExecuting:
		log.WithField("callee", e.FunctionName).
			WithField("caller", e.CallerName).
			Info("OnStart hook executing")
	case *fxevent.OnStartExecuted:
		infoOrErr("OnStart hook", e.Err,
			log.WithField("callee", e.FunctionName).
				WithField("caller", e.CallerName).
				WithField("runtime", e.Runtime.String()))
	case *fxevent.OnStopExecuting:
		log.WithField("callee", e.FunctionName).
			WithField("caller", e.CallerName).
			Info("OnStop hook executing")
	case *fxevent.OnStopExecuted:
		infoOrErr("OnStop hook", e.Err,
			log.WithField("callee", e.FunctionName).
				WithField("caller", e.CallerName).
				WithField("runtime", e.Runtime.String()))
	case *fxevent.Supplied:
		log.WithField("type", e.TypeName).
			WithError(e.Err).
			Info("Supplied")
	case *fxevent.Provided:
		infoOrErr("Provided", e.Err,
			log.WithField("constructor", e.ConstructorName).
				WithField("types", strings.Join(e.OutputTypeNames, ", ")))
	case *fxevent.Invoking:
		log.WithField("function", e.FunctionName).Info("Invoking")
	case *fxevent.Invoked:
		infoOrErr("Invoked", e.Err,
			log.WithField("function", e.FunctionName))
	case *fxevent.Stopping:
		log.WithField("signal", strings.ToUpper(e.Signal.String())).Info("Stopping")
	case *fxevent.Stopped:
		infoOrErr("Stopped", e.Err, log)
	case *fxevent.RolledBack:
		log.WithError(e.Err).Error("Start failed, rolling back")
	case *fxevent.Started:
		infoOrErr("Started", e.Err, log)
	case *fxevent.LoggerInitialized:
		infoOrErr("Logger initialized", e.Err, log)
	}
}

func infoOrErr(msg string, err error, log Interface) {
	if err != nil {
		log.WithError(err).Error(msg + " failed")
		return
	}

	log.Info(msg)
}
