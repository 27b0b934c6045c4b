package apphttp

import "ihlutir.is/app/internal/shared/apperr"

func notFound() error {
	return apperr.NotFoundErr("Síða fannst ekki.")
}
