// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's ports.
// To regenerate mocks, run `go generate ./...` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/inventory_repository.go -destination=inventory_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/report_writer.go -destination=report_writer_mock.go -package=mocks
