package donation

import (
	"github.com/LukeSky25/Material-Share-App/internal/domain/donation"
	"github.com/LukeSky25/Material-Share-App/pkg/brdoc"
)

func ToResponseDonation(dDomain donation.Donation) Donation {
	return Donation{
		UUID:            dDomain.UUID,
		OwnerUUID:       dDomain.OwnerUUID,
		CategoryUUID:    dDomain.CategoryUUID,
		BeneficiaryUUID: dDomain.BeneficiaryUUID,
		Name:            dDomain.Name,
		Description:     dDomain.Description,
		Quantity:        dDomain.Quantity,
		CEP:             brdoc.FormatCEP(dDomain.CEP),
		HouseNumber:     dDomain.HouseNumber,
		Complement:      dDomain.Complement,
		Status:          string(dDomain.Status),
		CreatedAt:       dDomain.CreatedAt,
	}
}

func ToResponseDonations(dsDomain donation.Donations) Donations {
	ds := make(Donations, len(dsDomain))
	for idx, d := range dsDomain {
		ds[idx] = ToResponseDonation(*d)
	}

	return ds
}

func ToDomainDonation(req Request) donation.Donation {
	return donation.Donation{
		CategoryUUID: req.CategoryUUID,
		Name:         req.Name,
		Description:  req.Description,
		Quantity:     req.Quantity,
		CEP:          req.CEP,
		HouseNumber:  req.HouseNumber,
		Complement:   req.Complement,
	}
}
