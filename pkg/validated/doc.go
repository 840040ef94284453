// Package validated decorates an arbitrary input widget with asynchronous
// validation.
//
// A Wrapper owns two pieces of state: the raw text currently held by the
// widget and the latest completed validation Result. Every change of the raw
// value (and every replacement of the validator or the OnValidatedChange
// callback) schedules exactly one validation task. Tasks run on their own
// goroutine; when a task completes and the wrapper is still mounted, its
// Result replaces the current one and the caller is notified with either the
// validated value or nil.
//
// The wrapper never validates on construction, so a default value is never
// flagged before the user edits it. Once Unmount is called (or the parent
// context is cancelled) completed validations are discarded without touching
// state or invoking callbacks.
//
// Overlapping validations are not ordered: the last one to complete wins,
// even when it was started for an older value. WithLatestOnly switches to a
// generation check that drops results for superseded values.
//
// # Usage
//
//	w, err := validated.New(ctx, validated.Config[template.HTML]{
//		Validator:         validators.MinLength(3, "too short"),
//		Component:         renderer.TextInput(), // html.Renderer
//		OnValidatedChange: func(v *string) { /* nil while invalid */ },
//		DefaultValue:      "ada",
//	})
//	if err != nil {
//		return err
//	}
//	defer w.Unmount()
//
//	w.HandleChange("ad")
//	w.Wait()
//	view, err := w.Render(ctx)
package validated
