package command

import (
	gcmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-errors"

	"github.com/DEV-SHUKLA-GITHUB/BioData-maker/biodata"
	"github.com/DEV-SHUKLA-GITHUB/BioData-maker/query"
)

// RegisterHandlers wires biodata commands and queries to go-command.
func RegisterHandlers(reg *gcmd.Registry, svc *biodata.FormService, exporter *biodata.Exporter) ([]dispatcher.Subscription, error) {
	if svc == nil {
		return nil, errors.New("form service is required", errors.CategoryValidation).
			WithTextCode("SERVICE_REQUIRED")
	}

	add := NewAddFieldHandler(svc)
	del := NewDeleteFieldHandler(svc)
	rename := NewRenameFieldHandler(svc)
	set := NewSetFieldValueHandler(svc)
	reorder := NewReorderFieldHandler(svc)
	save := NewSaveFormHandler(svc)
	submit := NewSubmitFormHandler(svc)
	export := NewExportTemplateHandler(svc, exporter)

	schema := query.NewFormSchemaHandler(svc)
	catalog := query.NewTemplateCatalogHandler()
	options := query.NewFieldOptionsHandler()
	image := query.NewSessionImageHandler(svc)

	subscriptions := []dispatcher.Subscription{
		dispatcher.SubscribeCommand(add),
		dispatcher.SubscribeCommand(del),
		dispatcher.SubscribeCommand(rename),
		dispatcher.SubscribeCommand(set),
		dispatcher.SubscribeCommand(reorder),
		dispatcher.SubscribeCommand(save),
		dispatcher.SubscribeCommand(submit),
		dispatcher.SubscribeCommand(export),
		dispatcher.SubscribeQuery(schema),
		dispatcher.SubscribeQuery(catalog),
		dispatcher.SubscribeQuery(options),
		dispatcher.SubscribeQuery(image),
	}

	if reg != nil {
		handlers := []any{
			add,
			del,
			rename,
			set,
			reorder,
			save,
			submit,
			export,
			schema,
			catalog,
			options,
			image,
		}
		for _, handler := range handlers {
			if err := reg.RegisterCommand(handler); err != nil {
				return subscriptions, err
			}
		}
	}

	return subscriptions, nil
}
