package handlers

//go:generate mockgen -source=../../../usecase/cliente_usecase.go -destination=mocks/mock_cliente_usecase.go -package=mocks
//go:generate mockgen -source=../../../usecase/trabajo_usecase.go -destination=mocks/mock_trabajo_usecase.go -package=mocks
//go:generate mockgen -source=../../../usecase/item_usecase.go -destination=mocks/mock_item_usecase.go -package=mocks
//go:generate mockgen -source=../../../usecase/pago_usecase.go -destination=mocks/mock_pago_usecase.go -package=mocks
//go:generate mockgen -source=../../../usecase/evento_usecase.go -destination=mocks/mock_evento_usecase.go -package=mocks
//go:generate mockgen -source=../../../usecase/calendar_export.go -destination=mocks/mock_calendar_export.go -package=mocks
//go:generate mockgen -source=../../../usecase/due_date_triage.go -destination=mocks/mock_due_date_triage.go -package=mocks
//go:generate mockgen -source=../../../usecase/dashboard_usecase.go -destination=mocks/mock_dashboard_usecase.go -package=mocks
//go:generate mockgen -source=../../../usecase/documento_usecase.go -destination=mocks/mock_documento_usecase.go -package=mocks
//go:generate mockgen -source=../../../usecase/catalogo_usecase.go -destination=mocks/mock_catalogo_usecase.go -package=mocks
//go:generate mockgen -source=../../../usecase/backup_usecase.go -destination=mocks/mock_backup_usecase.go -package=mocks
//go:generate mockgen -source=../../../usecase/report_usecase.go -destination=mocks/mock_report_usecase.go -package=mocks
