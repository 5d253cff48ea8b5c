/*
Copyright 2025 Hemolink Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package hemolink

import (
	"github.com/hemolink/hemolink/internal/apierror"
	"github.com/hemolink/hemolink/model"
)

// PrepareTransfusionOrder checks that a transfusion order is complete
// and that the user is signed in. The coordination API has no intake
// endpoint for transfusion orders yet, so the validated order is handed
// back to the caller for manual placement.
func (h Hemolink) PrepareTransfusionOrder(order *model.TransfusionOrder) error {
	tokens, err := h.tokens.Load()
	if err != nil {
		return err
	}
	if tokens == nil || tokens.Access == "" {
		return ErrNotSignedIn
	}

	if err := order.Validate(); err != nil {
		return apierror.NewAPIError(apierror.ErrValidation,
			"the transfusion order is incomplete", model.ValidationMessages(err))
	}
	return nil
}
