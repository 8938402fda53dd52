/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package classes

const (
	// Struct tag key of annotation fields:
	//
	//	type Entity struct {
	//		_ struct{} `annotate:"table,audited"`
	//	}
	AnnotationTag = "annotate"

	annotationSeparator = ","
	annotationField     = "_"
)
