package mws

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// TransportPackage is a small-parcel package in a transport request.
type TransportPackage struct {
	CarrierName   string `xml:"CarrierName"`
	TrackingID    string `xml:"TrackingId"`
	PackageStatus string `xml:"PackageStatus"`
}

// TransportContent is the result of GetTransportContent.
type TransportContent struct {
	Response
	ShipmentID           string             `xml:"TransportContent>TransportHeader>ShipmentId"`
	IsPartnered          bool               `xml:"TransportContent>TransportHeader>IsPartnered"`
	ShipmentType         string             `xml:"TransportContent>TransportHeader>ShipmentType"`
	Status               string             `xml:"TransportContent>TransportResult>TransportStatus"`
	Packages             []TransportPackage `xml:"TransportContent>TransportDetails>PartneredSmallParcelData>PackageList>member"`
	PartneredEstimate    *Money             `xml:"TransportContent>TransportDetails>PartneredSmallParcelData>PartneredEstimate>Amount"`
	NonPartneredPackages []TransportPackage `xml:"TransportContent>TransportDetails>NonPartneredSmallParcelData>PackageList>member"`
}

// TransportResult is the status returned by the transport request operations.
type TransportResult struct {
	Response
	Status string `xml:"TransportResult>TransportStatus"`
}

// TransportDocument is a decoded label or bill-of-lading document.
type TransportDocument struct {
	Response
	PdfDocument []byte
	Checksum    string
}

// PackageDimensions describes one partnered small-parcel package.
type PackageDimensions struct {
	Length        float64 `validate:"gt=0"`
	Width         float64 `validate:"gt=0"`
	Height        float64 `validate:"gt=0"`
	DimensionUnit string  `validate:"oneof=inches centimeters"`
	Weight        float64 `validate:"gt=0"`
	WeightUnit    string  `validate:"oneof=pounds kilograms"`
}

// PutTransportRequest sends small-parcel transport details. Partnered
// shipments describe packages; non-partnered ones list tracking IDs.
type PutTransportRequest struct {
	ShipmentID   string `validate:"required"`
	IsPartnered  bool
	ShipmentType string              `validate:"required,eq=SP"`
	CarrierName  string              `validate:"required"`
	Packages     []PackageDimensions `validate:"dive"`
	TrackingIDs  []string
}

func (c *Client) transportRequest(action, shipmentID string) (*Request, error) {
	if shipmentID == "" {
		return nil, invalidf("shipment ID is required")
	}
	r := newRequest(SectionInbound, action, groupInbound)
	r.Params.Set("ShipmentId", shipmentID)
	return r, nil
}

// PutTransportContent sends transport details for a shipment.
func (c *Client) PutTransportContent(
	ctx context.Context,
	req PutTransportRequest,
) (*TransportResult, error) {
	if err := c.check(req); err != nil {
		return nil, err
	}
	if req.IsPartnered && len(req.Packages) == 0 {
		return nil, invalidf("partnered shipments need at least one package")
	}
	if !req.IsPartnered && len(req.TrackingIDs) == 0 {
		return nil, invalidf("non-partnered shipments need at least one tracking ID")
	}

	r, err := c.transportRequest("PutTransportContent", req.ShipmentID)
	if err != nil {
		return nil, err
	}
	setBool(r.Params, "IsPartnered", req.IsPartnered)
	r.Params.Set("ShipmentType", req.ShipmentType)

	if req.IsPartnered {
		const prefix = "TransportDetails.PartneredSmallParcelData"
		r.Params.Set(prefix+".CarrierName", req.CarrierName)
		for i, p := range req.Packages {
			key := member(prefix+".PackageList", i+1, "")
			r.Params.Set(key+".Dimensions.Length", formatFloat(p.Length))
			r.Params.Set(key+".Dimensions.Width", formatFloat(p.Width))
			r.Params.Set(key+".Dimensions.Height", formatFloat(p.Height))
			r.Params.Set(key+".Dimensions.Unit", p.DimensionUnit)
			r.Params.Set(key+".Weight.Value", formatFloat(p.Weight))
			r.Params.Set(key+".Weight.Unit", p.WeightUnit)
		}
	} else {
		const prefix = "TransportDetails.NonPartneredSmallParcelData"
		r.Params.Set(prefix+".CarrierName", req.CarrierName)
		for i, id := range req.TrackingIDs {
			r.Params.Set(member(prefix+".PackageList", i+1, "TrackingId"), id)
		}
	}
	return call[TransportResult](ctx, c, r)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// GetTransportContent returns the transport details of a shipment.
func (c *Client) GetTransportContent(
	ctx context.Context,
	shipmentID string,
) (*TransportContent, error) {
	r, err := c.transportRequest("GetTransportContent", shipmentID)
	if err != nil {
		return nil, err
	}
	return call[TransportContent](ctx, c, r)
}

func (c *Client) transportAction(
	ctx context.Context,
	action,
	shipmentID string,
) (*TransportResult, error) {
	r, err := c.transportRequest(action, shipmentID)
	if err != nil {
		return nil, err
	}
	return call[TransportResult](ctx, c, r)
}

// EstimateTransportRequest asks for a partnered carrier estimate.
func (c *Client) EstimateTransportRequest(
	ctx context.Context,
	shipmentID string,
) (*TransportResult, error) {
	return c.transportAction(ctx, "EstimateTransportRequest", shipmentID)
}

// ConfirmTransportRequest accepts the partnered carrier estimate.
func (c *Client) ConfirmTransportRequest(
	ctx context.Context,
	shipmentID string,
) (*TransportResult, error) {
	return c.transportAction(ctx, "ConfirmTransportRequest", shipmentID)
}

// VoidTransportRequest cancels a confirmed transport request.
func (c *Client) VoidTransportRequest(
	ctx context.Context,
	shipmentID string,
) (*TransportResult, error) {
	return c.transportAction(ctx, "VoidTransportRequest", shipmentID)
}

type transportDocumentResult struct {
	Response
	PdfDocument string `xml:"TransportDocument>PdfDocument"`
	Checksum    string `xml:"TransportDocument>Checksum"`
}

func (c *Client) transportDocument(ctx context.Context, r *Request) (*TransportDocument, error) {
	res, err := call[transportDocumentResult](ctx, c, r)
	if err != nil {
		return nil, err
	}

	pdf, err := base64.StdEncoding.DecodeString(strings.TrimSpace(res.PdfDocument))
	if err != nil {
		return nil, fmt.Errorf("decoding %s document: %w", r.Action, err)
	}
	if err := verifyMD5(pdf, res.Checksum); err != nil {
		return nil, err
	}

	doc := &TransportDocument{PdfDocument: pdf, Checksum: res.Checksum}
	doc.setMetadata(res.Metadata)
	return doc, nil
}

// GetPackageLabels returns shipping labels for a shipment. pageType is a
// label stock such as PackageLabel_Letter_2.
func (c *Client) GetPackageLabels(
	ctx context.Context,
	shipmentID, pageType string,
	numPackages int,
) (*TransportDocument, error) {
	if pageType == "" {
		return nil, invalidf("page type is required")
	}
	r, err := c.transportRequest("GetPackageLabels", shipmentID)
	if err != nil {
		return nil, err
	}
	r.Params.Set("PageType", pageType)
	setInt(r.Params, "NumberOfPackages", numPackages)
	return c.transportDocument(ctx, r)
}

// GetBillOfLading returns the bill of lading for a shipment.
func (c *Client) GetBillOfLading(
	ctx context.Context,
	shipmentID string,
) (*TransportDocument, error) {
	r, err := c.transportRequest("GetBillOfLading", shipmentID)
	if err != nil {
		return nil, err
	}
	return c.transportDocument(ctx, r)
}
