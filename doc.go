// Package sintax provides the animated text and glyph-field effects of a
// terminal-styled landing page, rendered with [Ebitengine].
//
// It covers four pieces: a glyph sampler that turns a string and a progress
// value into a partially revealed frame, timelines that sequence those
// effects and property tweens with relative offsets, a pixel matrix whose
// reveal follows the scroll position, and a reactive glyph grid that lights
// up and glitches around the pointer.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := sintax.NewScene()
//	// ... add nodes, timelines, grids ...
//	sintax.Run(scene, sintax.RunConfig{
//		Title: "sintax", Width: 960, Height: 600,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly. Other drivers, such as the
// terminal loop in sintax/term, call [Scene.Tick] and [Scene.Render].
//
// # Text effects
//
// [Sample] is a pure function of (source, progress, policy). [TypeText],
// [DecodeText] and [ScrambleText] wrap it into a [TextEffect] with a
// duration and easing:
//
//	title := sintax.NewText("title", "")
//	scene.Root().AddChild(title)
//
//	tl := sintax.NewTimeline().
//		Text(sintax.TypeText("sintax:~$ deploy", 0.018), line, sintax.At(0.3)).
//		Text(sintax.DecodeText("SIGNAL", 0.5), title, sintax.AfterEnd(0.12))
//
// Offsets mirror the usual timeline notation: [ParseOffset] accepts "0.3",
// "+=0.1", "-=0.1" and "<0.08".
//
// # Playing once
//
// A timeline plays at most once. Attach it to the scene's frame loop and
// start it with [Watch] when its region scrolls into view:
//
//	subs.Add(tl.Attach(scene))
//	subs.Add(sintax.Watch(scene.Scroller(), region, sintax.DefaultTriggerLine, tl))
//
// Every subscription returns a [CallbackHandle]; removing all of them on
// unmount cancels pending writes.
//
// # Grids
//
// [PixelRevealMatrix] lights a rows x cols block in shuffled, bottom-biased
// order as the scroll fraction grows. [ReactiveGrid] draws a field of base
// glyphs whose opacity follows the pointer distance. Both draw through a
// [Surface], either an [ImageSurface] or a terminal surface.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package sintax
