// Package usecase holds testify mocks of the usecase interfaces.
package usecase
