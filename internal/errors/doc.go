// Package errors provides structured errors for the pokedex project.
//
// Errors carry a Code, a user-facing message, an optional cause, and
// metadata. Every failure the core can produce falls into one of three kinds:
//
//   - transport: the upstream could not be reached, timed out, or answered
//     with a non-2xx status (CodeUnavailable, CodeDeadlineExceeded,
//     CodeNotFound, CodeResourceExhausted; see FromHTTPStatus)
//   - decode: the response body was not valid JSON (CodeDataLoss)
//   - missing field: a decoded payload lacks a key the caller requires
//     (CodeInvalidArgument with MetaField set; see MissingField)
//
// # Basic Usage
//
//	err := errors.NotFoundf("pokemon %s not found", name)
//	err := errors.MissingField("stats[0].base_stat")
//
// Adding metadata:
//
//	err := errors.Unavailable("pokeapi request failed").
//	    WithMeta("url", url).
//	    WithMeta("status", resp.StatusCode)
//
// Wrapping keeps the code of an existing *Error and defaults to CodeInternal
// for anything else:
//
//	if err := repo.Put(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to store catalog")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // cache miss, or the upstream has no such pokemon
//	}
//	if errors.IsMissingField(err) {
//	    path := errors.FieldPath(err)
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("api.base_url", cfg.API.BaseURL, vb)
//	errors.ValidateEnum("catalog.backend", cfg.Catalog.Backend, backends, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
