// Package dropdown implements a disclosure widget: a trigger element that
// toggles an adjacent panel, with keyboard navigation, focus management,
// outside-interaction dismissal and aria attribute upkeep.
//
// The widget runs on the pkg/dom runtime and delegates geometry to a
// Positioner (the Overlay engine by default). Open and close transitions
// announce themselves with cancelable dd-show / dd-hide intent events; a
// handler calling PreventDefault vetoes the transition before any state
// changes. Completed transitions emit dd-after-show / dd-after-hide.
//
// # Quick Start
//
//	doc := dom.NewDocument()
//	dd := dropdown.New(
//	    dropdown.WithPlacement(dropdown.PlacementBottomStart),
//	    dropdown.WithCloseOnSelect(true),
//	)
//	dd.Connect(doc)
//
//	button := doc.CreateElement("button")
//	button.SetTabbable(true)
//	dd.SetTrigger(button)
//
//	menu := dropdown.NewMenu(doc, []dropdown.Item{
//	    {Label: "Cut", Value: "cut"},
//	    {Label: "Copy", Value: "copy"},
//	    {Label: "Paste", Value: "paste"},
//	})
//	dd.SetPanel(menu.Element())
//
//	dd.Show()
//	doc.Flush() // transitions complete on the next flush
//
// Show, Hide and Reposition return immediately; observe dd-after-show and
// dd-after-hide on the host element to learn when a transition finished.
package dropdown
